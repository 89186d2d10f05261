package common

// UnknownStr is the display name of values outside of a known enumeration.
const UnknownStr = "unknown"
