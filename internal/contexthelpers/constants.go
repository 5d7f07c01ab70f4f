package contexthelpers

type contextKey string

const IsAuthenticatedContextKey = contextKey("isAuthenticated")
const CurrentUserEmailContextKey = contextKey("currentUserEmail")
const CurrentPathContextKey = contextKey("currentPath")
const CspNonceContextKey = contextKey("cspNonce")
