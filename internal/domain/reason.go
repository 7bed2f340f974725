package domain

// RejectReason is a canned rejection reason code
type RejectReason string

const (
	ReasonRules      RejectReason = "rules"
	ReasonIncomplete RejectReason = "incomplete"
	ReasonPrice      RejectReason = "price"
	ReasonOther      RejectReason = "other"
)

// ParseRejectReason parses a reason code coming from callback data
func ParseRejectReason(s string) (RejectReason, bool) {
	switch RejectReason(s) {
	case ReasonRules:
		return ReasonRules, true
	case ReasonIncomplete:
		return ReasonIncomplete, true
	case ReasonPrice:
		return ReasonPrice, true
	case ReasonOther:
		return ReasonOther, true
	}
	return "", false
}

// NeedsText reports whether the reason requires an extra free-text input
// before the rejection can complete
func (r RejectReason) NeedsText() bool {
	return r == ReasonOther
}

// Text returns the fixed reason text shown to the author.
// Empty for ReasonOther: the admin supplies it separately.
func (r RejectReason) Text() string {
	switch r {
	case ReasonRules:
		return "Не соответствует правилам публикации"
	case ReasonIncomplete:
		return "Неполная информация в объявлении"
	case ReasonPrice:
		return "Некорректная цена"
	}
	return ""
}
