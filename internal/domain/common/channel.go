// Package common holds value objects shared across helpdesk contexts:
// inbound channel types and priorities appear on tickets, tasks, and contacts.
package common

// ChannelType identifies the inbound channel a conversation arrived on.
type ChannelType string

const (
	ChannelWhatsApp  ChannelType = "whatsapp"
	ChannelEmail     ChannelType = "email"
	ChannelWebChat   ChannelType = "webchat"
	ChannelPhone     ChannelType = "phone"
	ChannelInstagram ChannelType = "instagram"
	ChannelFacebook  ChannelType = "facebook"
	ChannelPinterest ChannelType = "pinterest"
	ChannelTwitter   ChannelType = "twitter"
	ChannelThreads   ChannelType = "threads"
	ChannelTelegram  ChannelType = "telegram"
	ChannelWebhook   ChannelType = "webhook"
)

func (c ChannelType) IsValid() bool {
	switch c {
	case ChannelWhatsApp, ChannelEmail, ChannelWebChat, ChannelPhone,
		ChannelInstagram, ChannelFacebook, ChannelPinterest, ChannelTwitter,
		ChannelThreads, ChannelTelegram, ChannelWebhook:
		return true
	}
	return false
}

func (c ChannelType) String() string {
	return string(c)
}
