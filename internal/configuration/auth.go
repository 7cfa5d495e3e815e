package configuration

type AuthRule struct {
	Path        string
	Method      string // "*" means all methods
	RequireAuth bool   // true means require auth, false means exclude from auth
}

var AuthRulePrefixMatchPath = []AuthRule{
	{Path: "/api/auth", Method: "*", RequireAuth: false},
	{Path: "/api/health", Method: "GET", RequireAuth: false},
	{Path: "/api/dashboard", Method: "GET", RequireAuth: true},
	{Path: "/api/countries", Method: "GET", RequireAuth: true},
	{Path: "/api/users", Method: "GET", RequireAuth: true},
	{Path: "/api/activity", Method: "GET", RequireAuth: true},
}
