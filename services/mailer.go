package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"paddle-scheduler/config"
	"paddle-scheduler/models"
	"paddle-scheduler/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Mailer builds and delivers availability-request and match-reminder
// emails. Every attempt is appended to the email log with its outcome;
// failed sends are not retried.
type Mailer struct {
	DB     *gorm.DB
	cfg    config.EmailConfig
	appURL string

	// send is smtp.SendMail in production; tests swap it out.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(db *gorm.DB, cfg *config.Config) *Mailer {
	return &Mailer{
		DB:     db,
		cfg:    cfg.Email,
		appURL: strings.TrimRight(cfg.Server.AppURL, "/"),
		send:   smtp.SendMail,
	}
}

type availabilityEmailData struct {
	FirstName     string
	SaturdayDate  string
	SundayDate    string
	SaturdayTimes []string
	SundayTimes   []string
	BothLink      string
	SaturdayLink  string
	SundayLink    string
	NoneLink      string
}

// BuildAvailabilityEmail renders the availability-request email for one
// player, with the four one-click RSVP links minted from the shared token
// codec.
func (m *Mailer) BuildAvailabilityEmail(player models.Player, event models.WeekendEvent, blocks []models.MatchBlock) (subject, body string, err error) {
	data := availabilityEmailData{
		FirstName:    utils.FirstName(player.Name),
		SaturdayDate: event.SaturdayDate.Format("Monday, January 2"),
		SundayDate:   event.SundayDate.Format("Monday, January 2"),
		BothLink:     m.rsvpLink(player.ID, event.ID, models.AvailabilityBoth),
		SaturdayLink: m.rsvpLink(player.ID, event.ID, models.AvailabilitySaturday),
		SundayLink:   m.rsvpLink(player.ID, event.ID, models.AvailabilitySunday),
		NoneLink:     m.rsvpLink(player.ID, event.ID, models.AvailabilityNone),
	}
	for _, b := range blocks {
		line := fmt.Sprintf("%s - %s", b.StartTime, b.Location)
		switch b.DayOfWeek {
		case models.DaySaturday:
			data.SaturdayTimes = append(data.SaturdayTimes, line)
		case models.DaySunday:
			data.SundayTimes = append(data.SundayTimes, line)
		}
	}

	tmpl, err := template.New("availability").Parse(availabilityEmailTemplate)
	if err != nil {
		return "", "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}

	subject = fmt.Sprintf("🎾 Can you play paddle %s?", data.SaturdayDate)
	return subject, buf.String(), nil
}

// SendAvailabilityRequest mails one player about one weekend event and
// logs the attempt as emailType (initial request or daily reminder).
// Returns whether delivery succeeded.
func (m *Mailer) SendAvailabilityRequest(player models.Player, event models.WeekendEvent, blocks []models.MatchBlock, emailType string) bool {
	subject, body, err := m.BuildAvailabilityEmail(player, event, blocks)
	if err != nil {
		logrus.WithError(err).Error("failed to build availability email")
		m.logEmail(player.ID, event.ID, emailType, false)
		return false
	}

	if err := m.deliver(player.Email, subject, body); err != nil {
		logrus.WithError(err).WithField("email", player.Email).Error("failed to send availability email")
		m.logEmail(player.ID, event.ID, emailType, false)
		return false
	}

	m.logEmail(player.ID, event.ID, emailType, true)
	return true
}

type matchReminderEmailData struct {
	MatchDate   string
	StartTime   string
	Location    string
	PlayerNames string
}

// BuildMatchReminderEmail renders the day-before reminder shared by all
// players in the match.
func (m *Mailer) BuildMatchReminderEmail(players []models.Player, match models.Match, block models.MatchBlock) (subject, body string, err error) {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}

	data := matchReminderEmailData{
		MatchDate:   match.MatchDate.Format("Monday, January 2"),
		StartTime:   block.StartTime,
		Location:    block.Location,
		PlayerNames: strings.Join(names, ", "),
	}

	tmpl, err := template.New("reminder").Parse(matchReminderEmailTemplate)
	if err != nil {
		return "", "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}

	subject = fmt.Sprintf("🎾 Match Tomorrow: %s at %s", block.StartTime, block.Location)
	return subject, buf.String(), nil
}

// SendMatchReminder mails every assigned player and logs each attempt.
// Returns the number of successful and failed sends.
func (m *Mailer) SendMatchReminder(players []models.Player, match models.Match, block models.MatchBlock) (sent, failed int) {
	subject, body, err := m.BuildMatchReminderEmail(players, match, block)
	if err != nil {
		logrus.WithError(err).Error("failed to build match reminder email")
		return 0, len(players)
	}

	for _, player := range players {
		if err := m.deliver(player.Email, subject, body); err != nil {
			logrus.WithError(err).WithField("email", player.Email).Error("failed to send match reminder")
			m.logEmail(player.ID, match.WeekendEventID, models.EmailTypeMatchReminder, false)
			failed++
			continue
		}
		m.logEmail(player.ID, match.WeekendEventID, models.EmailTypeMatchReminder, true)
		sent++
	}
	return sent, failed
}

func (m *Mailer) rsvpLink(playerID, eventID, availability string) string {
	return m.appURL + "/rsvp?token=" + utils.EncodeRSVPToken(playerID, eventID, availability)
}

func (m *Mailer) deliver(to, subject, body string) error {
	if !m.cfg.Enabled {
		logrus.WithField("to", to).Info("📭 email disabled, skipping send")
		return nil
	}

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.From),
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	return m.send(addr, auth, m.cfg.From, []string{to}, []byte(msg.String()))
}

func (m *Mailer) logEmail(playerID, eventID, emailType string, success bool) {
	entry := models.EmailLog{
		ID:             uuid.NewString(),
		PlayerID:       playerID,
		WeekendEventID: eventID,
		EmailType:      emailType,
		Success:        success,
	}
	if err := m.DB.Create(&entry).Error; err != nil {
		logrus.WithError(err).Error("failed to append email log entry")
	}
}

const availabilityEmailTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #004e89; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: white; padding: 30px; border: 1px solid #ddd; border-top: none; }
    .match-times { background: #f5f5f5; padding: 15px; margin: 20px 0; border-left: 4px solid #ff6b35; }
    .buttons { margin: 30px 0; }
    .button { display: inline-block; padding: 15px 30px; margin: 10px 5px; text-decoration: none; border-radius: 6px; font-weight: 600; text-align: center; min-width: 200px; }
    .btn-both { background: #28a745; color: white; }
    .btn-saturday { background: #007bff; color: white; }
    .btn-sunday { background: #6f42c1; color: white; }
    .btn-none { background: #6c757d; color: white; }
    .footer { text-align: center; color: #666; font-size: 14px; margin-top: 20px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🎾 Paddle Weekend: {{.SaturdayDate}}</h1>
    </div>
    <div class="content">
      <p>Hi {{.FirstName}},</p>

      <p>Can you play paddle this weekend? Just click one button below — no forms, no login required.</p>

      <div class="match-times">
        <strong>📅 {{.SaturdayDate}}</strong>
        <ul>{{range .SaturdayTimes}}<li>{{.}}</li>{{end}}</ul>
      </div>

      <div class="match-times">
        <strong>📅 {{.SundayDate}}</strong>
        <ul>{{range .SundayTimes}}<li>{{.}}</li>{{end}}</ul>
      </div>

      <div class="buttons">
        <a href="{{.BothLink}}" class="button btn-both">✓ Both Days</a><br/>
        <a href="{{.SaturdayLink}}" class="button btn-saturday">Saturday Only</a><br/>
        <a href="{{.SundayLink}}" class="button btn-sunday">Sunday Only</a><br/>
        <a href="{{.NoneLink}}" class="button btn-none">Can't Play</a>
      </div>

      <p style="color: #666; font-size: 14px;">
        Once you respond, you won't get any more reminder emails for this weekend.
      </p>
    </div>
    <div class="footer">
      <p>Questions? Just reply to this email.</p>
    </div>
  </div>
</body>
</html>
`

const matchReminderEmailTemplate = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #ff6b35; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
    .content { background: white; padding: 30px; border: 1px solid #ddd; border-top: none; }
    .match-info { background: #f5f5f5; padding: 20px; margin: 20px 0; border-radius: 6px; }
    .match-info h3 { margin-top: 0; color: #004e89; }
    .match-info p { margin: 10px 0; font-size: 16px; }
    .highlight { color: #ff6b35; font-weight: 600; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🎾 Match Reminder</h1>
    </div>
    <div class="content">
      <p>Your paddle match is tomorrow!</p>

      <div class="match-info">
        <h3>Match Details</h3>
        <p><strong>📅 Date:</strong> <span class="highlight">{{.MatchDate}}</span></p>
        <p><strong>🕐 Time:</strong> <span class="highlight">{{.StartTime}}</span></p>
        <p><strong>📍 Location:</strong> <span class="highlight">{{.Location}}</span></p>
        <p><strong>👥 Players:</strong> {{.PlayerNames}}</p>
      </div>

      <p>See you on the court!</p>
    </div>
  </div>
</body>
</html>
`
