package callbacks

type Verdict int

const (
	VerdictProceed Verdict = iota
	VerdictDeny
)

// Authorize lets only the recorded keyboard owner through. A keyboard without
// an owner (zero) matches nobody.
func Authorize(userID int64, keyboardOwner int64) Verdict {
	if keyboardOwner != 0 && userID == keyboardOwner {
		return VerdictProceed
	}
	return VerdictDeny
}
