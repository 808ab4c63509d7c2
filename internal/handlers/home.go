package handlers

import (
	"fmt"
	"net/http"
)

const homePage = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>HomeNest Server</title>
</head>
<body>
	<h1>HomeNest Server is Running!</h1>
	<h2>Available API Endpoints:</h2>
	<ul>
		<li><a href="/api/test">GET /api/test</a> - Test MongoDB connection</li>
		<li><a href="/api/sliders">GET /api/sliders</a> - Get all sliders</li>
		<li><a href="/api/properties/featured">GET /api/properties/featured</a> - Get featured properties (6 most recent)</li>
		<li><a href="/api/properties">GET /api/properties</a> - Get all properties (sortBy=price|date|title, order=asc|desc)</li>
		<li>GET /api/properties/:id - Get single property by ID</li>
		<li>POST /api/properties - Add new property</li>
		<li>PUT /api/properties/:id - Update property</li>
		<li>DELETE /api/properties/:id - Delete property</li>
		<li><a href="/api/reviews">GET /api/reviews</a> - Get all reviews</li>
		<li>GET /api/reviews/property/:propertyId - Get reviews for a property</li>
		<li>GET /api/reviews/user/:userEmail - Get reviews by a user</li>
		<li>POST /api/reviews - Add new review</li>
		<li>DELETE /api/reviews/:id - Delete review</li>
	</ul>
	<p><strong>Note:</strong> URLs are case-sensitive! Use lowercase routes.</p>
</body>
</html>`

// --- GET / ---

func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, homePage)
}
