package smtp

import "gopkg.in/gomail.v2"

// GomailDialer exposes the default dialer for inspection in tests.
func (c *Client) GomailDialer() *gomail.Dialer {
	d, _ := c.dialer.(*gomail.Dialer)
	return d
}
