package descriptor

type OptionKind int

const (
	// KindUnknown marks a placeholder option. It is never translated.
	KindUnknown OptionKind = iota
	KindString
	KindInteger
	KindBoolean
	KindUser
	KindChannel
	KindRole
	KindMentionable
	KindNumber
	KindAttachment
)

func (k OptionKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindUser:
		return "user"
	case KindChannel:
		return "channel"
	case KindRole:
		return "role"
	case KindMentionable:
		return "mentionable"
	case KindNumber:
		return "number"
	case KindAttachment:
		return "attachment"
	default:
		return "unknown"
	}
}
