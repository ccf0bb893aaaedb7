package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ReminderClearValue is the flag value that clears a stored reminder.
const ReminderClearValue = "none"

// ParseDateTime parses a user-supplied date string in the configured layout,
// interpreted in the local timezone and stored as UTC. Date parsing lives
// here because the storage core only ever accepts time.Time values.
func ParseDateTime(value, layout string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected format %q)", value, layout)
	}
	return t.UTC(), nil
}

// ReminderFromFlags reads the remind-at flag with three-state semantics:
// flag untouched means leave the reminder alone, the value "none" clears it,
// anything else parses as a new reminder time.
func ReminderFromFlags(flags *pflag.FlagSet, name, layout string) (reminder *time.Time, set bool, err error) {
	if !flags.Changed(name) {
		return nil, false, nil
	}
	value, err := flags.GetString(name)
	if err != nil {
		return nil, false, err
	}
	if value == ReminderClearValue {
		return nil, true, nil
	}
	t, err := ParseDateTime(value, layout)
	if err != nil {
		return nil, false, err
	}
	return &t, true, nil
}

// StringFlagIfChanged returns a pointer to the flag value when the user
// passed it, nil otherwise. Distinguishes "not supplied" from "set to empty".
func StringFlagIfChanged(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	value, err := flags.GetString(name)
	if err != nil {
		return nil
	}
	return &value
}

// BoolFlagIfChanged returns a pointer to the flag value when the user
// passed it, nil otherwise.
func BoolFlagIfChanged(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	value, err := flags.GetBool(name)
	if err != nil {
		return nil
	}
	return &value
}
