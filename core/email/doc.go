// Package email defines the mail dispatch contract used by the newsletter run.
//
// Transports implement EmailSender. The SMTP and Postmark implementations live
// under integration/email; DevSender in this package writes messages to disk
// for local runs.
//
//	sender := email.NewDevSender("./dev_emails")
//
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "alice@example.com, bob@example.com",
//		Subject:  "Your AI Weekly Roundup!",
//		BodyHTML: page,
//		Tag:      "weekly-roundup",
//	})
//
// SendTo is a single pre-joined destination field. Entries may be separated by
// commas or semicolons and may carry display names. ParseRecipients splits it
// for transports that need one address per entry.
//
// Failures wrap ErrInvalidParams, ErrInvalidConfig or ErrFailedToSendEmail.
package email
