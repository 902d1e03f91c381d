// Package postmark implements email.EmailSender on top of the Postmark
// transactional API (github.com/mrz1836/postmark).
//
// It is the alternative to SMTP delivery, selected with MAIL_TRANSPORT=postmark.
// Both Postmark tokens are required; the sender address is the same SMTP_USER
// used by the SMTP transport, so the From header looks identical.
//
//	sender, err := postmark.New(postmark.Config{
//		PostmarkServerToken:  serverToken,
//		PostmarkAccountToken: accountToken,
//		SenderEmail:          "news@example.com",
//		SenderName:           "AI Weekly Roundup",
//	})
//
// Transport failures and Postmark API error codes are joined with
// email.ErrFailedToSendEmail.
package postmark
