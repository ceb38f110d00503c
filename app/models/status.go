package models

const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

func IsValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
