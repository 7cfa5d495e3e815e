package models

type LoggerKey struct{}

type BodyKey struct{}

type QueryKey struct{}

type ClientIPKey struct{}
