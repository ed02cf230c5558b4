// Package enums contains enums
package enums

// Channel denotes the delivery channel of an OTP challenge
type Channel string

const (
	// ChannelEmail -> the OTP is delivered to an email address
	ChannelEmail Channel = "email"
	// ChannelPhone -> the OTP is delivered to a phone number
	ChannelPhone Channel = "phone"
)

const (
	// ExchangeEligibleYes -> the product can be exchanged
	ExchangeEligibleYes = "Yes"
	// ExchangeEligibleNo -> the product cannot be exchanged
	ExchangeEligibleNo = "No"
)
