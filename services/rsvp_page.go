package services

import "github.com/gofiber/fiber/v2"

// RSVPPage serves the landing page behind the emailed one-click links. It
// shows exactly three states: recording, success with the confirmation
// text, or the returned error plus a hint to contact the organizer.
func (s *RSVPService) RSVPPage(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(rsvpPageHTML)
}

const rsvpPageHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Paddle Weekend RSVP</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; color: #333; background: #f5f5f5; }
    .card { max-width: 480px; margin: 80px auto; background: white; border-radius: 8px; padding: 40px; text-align: center; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
    h1 { color: #004e89; font-size: 22px; }
    .error { color: #c0392b; }
    .hint { color: #666; font-size: 14px; margin-top: 20px; }
  </style>
</head>
<body>
  <div class="card">
    <h1>🎾 Paddle Weekend</h1>
    <p id="status">Recording your response…</p>
    <p id="hint" class="hint" hidden>If this keeps failing, just contact the organizer directly.</p>
  </div>
  <script>
    (async function () {
      const status = document.getElementById('status');
      const hint = document.getElementById('hint');
      const token = new URLSearchParams(window.location.search).get('token') || '';
      try {
        const res = await fetch('/api/availability/respond', {
          method: 'POST',
          headers: { 'Content-Type': 'application/json' },
          body: JSON.stringify({ token })
        });
        const data = await res.json();
        if (res.ok && data.success) {
          status.textContent = data.message;
        } else {
          status.textContent = data.error || 'Something went wrong.';
          status.className = 'error';
          hint.hidden = false;
        }
      } catch (err) {
        status.textContent = 'Something went wrong.';
        status.className = 'error';
        hint.hidden = false;
      }
    })();
  </script>
</body>
</html>
`
