package booking

// DuplicatePolicy selects the scope of the one-booking-per-patient rule.
// Observed deployments differ on this, so it is configuration, not code.
type DuplicatePolicy string

const (
	// PolicySameDoctorSameDay rejects a second active booking with the same
	// doctor on the same date. This is the default.
	PolicySameDoctorSameDay DuplicatePolicy = "same_doctor_same_day"
	// PolicyGlobalSameDay rejects a second active booking with any doctor on
	// the same date.
	PolicyGlobalSameDay DuplicatePolicy = "global_same_day"
	// PolicySameDoctorCooldown additionally rejects bookings within
	// CooldownDays of an existing active booking with the same doctor.
	PolicySameDoctorCooldown DuplicatePolicy = "same_doctor_cooldown"
)

// ParseDuplicatePolicy maps a config string to a policy, falling back to the
// same-doctor-same-day default for unknown values.
func ParseDuplicatePolicy(s string) DuplicatePolicy {
	switch DuplicatePolicy(s) {
	case PolicyGlobalSameDay:
		return PolicyGlobalSameDay
	case PolicySameDoctorCooldown:
		return PolicySameDoctorCooldown
	default:
		return PolicySameDoctorSameDay
	}
}
