package model

type RSVPStatus string

const (
	RSVPGoing    RSVPStatus = "Going"
	RSVPMaybe    RSVPStatus = "Maybe"
	RSVPNotGoing RSVPStatus = "Not Going"
)

func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPGoing, RSVPMaybe, RSVPNotGoing:
		return true
	default:
		return false
	}
}
