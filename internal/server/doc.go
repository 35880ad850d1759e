// Package server provides the same-origin forwarding proxy for the upstream
// GraphQL API, plus the routing and middleware infrastructure it runs on.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Forwarding Proxy
//
// [GraphQLProxy] accepts {query, variables} POST bodies on /api/leetcode and
// relays them verbatim to the upstream endpoint with fixed browser-identifying
// headers. There is no logic beyond pass-through and error-code mapping: a
// missing query is rejected with 400 before any network call, upstream
// non-success statuses are mirrored with an {"error": ...} body, and any other
// failure maps to 500.
//
// # Middleware
//
// [Logging] tags each request with a uuid and records method, path, status,
// and duration. [RateLimit] throttles the upstream hop with a token bucket so
// a burst of dashboard panels cannot trip the public API's abuse detection.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
