// Package smtp sends email over SMTP using gopkg.in/gomail.v2.
//
// The client implements email.EmailSender. Each SendEmail call opens one
// session, authenticates, sends a single HTML message and closes the session.
// There is no retry.
//
// # Transport security
//
// Config.Port is kept as text. When it is exactly "465" the connection uses
// implicit TLS. Any other value, including "0465", connects in plaintext and
// upgrades with STARTTLS when the server advertises it.
//
//	client, err := smtp.New(smtp.Config{
//		Host:       "smtp.example.com",
//		Port:       "465",
//		Username:   "news@example.com",
//		Password:   os.Getenv("SMTP_PASS"),
//		SenderName: "AI Weekly Roundup",
//	})
//	if err != nil {
//		return err
//	}
//
//	err = client.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "a@example.com,b@example.com",
//		Subject:  "Your AI Weekly Roundup!",
//		BodyHTML: page,
//	})
//
// The From header is "SenderName <Username>". SendTo is parsed as an address
// list and every address is placed on the To header. Configuration errors wrap
// email.ErrInvalidConfig; transport errors wrap email.ErrFailedToSendEmail.
package smtp
