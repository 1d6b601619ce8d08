package protocol

type MessageType uint8

const (
	MessageTypeHello    MessageType = 1
	MessageTypePuzzle   MessageType = 2
	MessageTypeSolution MessageType = 3
	MessageTypeWelcome  MessageType = 4
	MessageTypeReject   MessageType = 5
	MessageTypeClose    MessageType = 6
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeHello:
		return "HELLO"
	case MessageTypePuzzle:
		return "PUZZLE"
	case MessageTypeSolution:
		return "SOLUTION"
	case MessageTypeWelcome:
		return "WELCOME"
	case MessageTypeReject:
		return "REJECT"
	case MessageTypeClose:
		return "CLOSE"
	default:
		return "UNKNOWN"
	}
}
