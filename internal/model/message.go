package model

type Button struct {
	Text string
	Data string
}

// OutMessage is a transport independent text message with an optional inline keyboard.
type OutMessage struct {
	Text     string
	Keyboard [][]Button
}

// Reply is everything produced for one inbound event.
// DeleteMessageID is the id of the message to remove from the chat, 0 means nothing to delete.
type Reply struct {
	Messages        []OutMessage
	DeleteMessageID int
}
