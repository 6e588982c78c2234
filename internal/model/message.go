package model

import "time"

// RawMessage is one notification as delivered by the message source.
// ReceivedAt carries the device clock timestamp and is used as a fallback
// when the body embeds no date of its own.
type RawMessage struct {
	Sender     string
	Body       string
	ReceivedAt time.Time
}
