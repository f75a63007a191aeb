package routes

import "github.com/gofiber/fiber/v2"

const docsPage = `<!DOCTYPE html>
<html>
<head>
<title>Coach Connect API</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; }
code { background: #f4f4f4; padding: 2px 5px; border-radius: 3px; }
table { border-collapse: collapse; width: 100%; }
td, th { border: 1px solid #ddd; padding: 6px 10px; text-align: left; }
</style>
</head>
<body>
<h1>Coach Connect API</h1>
<table>
<tr><th>Method</th><th>Path</th><th>Description</th></tr>
<tr><td>GET</td><td><code>/health</code></td><td>Liveness check</td></tr>
<tr><td>GET</td><td><code>/api/coaches</code></td><td>List coaches (query: specialization, search, page, limit)</td></tr>
<tr><td>POST</td><td><code>/api/coaches</code></td><td>Create a coach</td></tr>
<tr><td>GET</td><td><code>/api/coaches/:id</code></td><td>Get a coach</td></tr>
<tr><td>GET</td><td><code>/api/coaches/:id/slots?date=YYYY-MM-DD</code></td><td>Available time slots for a day</td></tr>
<tr><td>POST</td><td><code>/api/users</code></td><td>Create a user (idempotent by email)</td></tr>
<tr><td>GET</td><td><code>/api/users/:email</code></td><td>Get a user by email</td></tr>
<tr><td>POST</td><td><code>/api/subscriptions</code></td><td>Book a training package</td></tr>
<tr><td>GET</td><td><code>/api/subscriptions?userEmail=</code></td><td>List a user's subscriptions</td></tr>
<tr><td>GET</td><td><code>/api/subscriptions/:id/sessions</code></td><td>Session usage for a subscription</td></tr>
<tr><td>POST</td><td><code>/api/sessions</code></td><td>Schedule a session against a subscription</td></tr>
<tr><td>POST</td><td><code>/api/payments/create-session</code></td><td>Open a hosted payment session</td></tr>
<tr><td>POST</td><td><code>/api/payments/verify</code></td><td>Verify a payment order</td></tr>
<tr><td>POST</td><td><code>/api/bookings</code></td><td>Book a single hourly session</td></tr>
<tr><td>POST</td><td><code>/api/admin/seed</code></td><td>Reset and seed sample data (X-Admin-Key)</td></tr>
</table>
</body>
</html>`

func docsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Content-Type", fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(docsPage)
	}
}
