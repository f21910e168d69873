package model

// StaffRole is a staff member's job classification.
type StaffRole string

const (
	RoleDoctor StaffRole = "Doctor"
	RoleNurse  StaffRole = "Nurse"
	RoleAdmin  StaffRole = "Admin"
)

// ShiftPreference is the shift a staff member prefers to work.
type ShiftPreference string

const (
	ShiftMorning   ShiftPreference = "Morning"
	ShiftAfternoon ShiftPreference = "Afternoon"
	ShiftNight     ShiftPreference = "Night"
)

// FatigueThresholdHours is the weekly hour count past which a staff
// member is considered a fatigue risk.
const FatigueThresholdHours = 40.0

// StaffMember represents one person on the roster.
type StaffMember struct {
	ID              string
	Name            string
	Department      string
	Role            StaffRole
	ShiftPreference ShiftPreference
	HoursWorked     float64
}

// Fatigued reports whether the member has exceeded the fatigue threshold.
func (s StaffMember) Fatigued() bool {
	return s.HoursWorked > FatigueThresholdHours
}
