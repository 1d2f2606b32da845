package tiny

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Identifiers are made of letters and underscores only, "x1" scans as the
// identifier "x" followed by the number "1".
func isBeginIdent(c byte) bool {
	return isLetter(c) || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
