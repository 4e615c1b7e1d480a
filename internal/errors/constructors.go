package errors

// Convenience constructors for the error kinds the build produces.

// Decode reports content that was readable but not parseable.
func Decode(path string, cause error) *SiteError {
	return Wrap(cause, KindDecode, "failed to decode content").WithPath(path)
}

// Validation reports a descriptor field with the wrong shape or type.
func Validation(path, reason string) *SiteError {
	return New(KindValidation, reason).WithPath(path)
}

// IO reports a missing or unreadable file, or a failed write.
func IO(path string, cause error) *SiteError {
	return Wrap(cause, KindIO, "file operation failed").WithPath(path)
}

// Template reports a failure surfaced from the template engine. The path
// carries the template name; parse errors from text/template already embed
// the line number in their message.
func Template(name string, cause error) *SiteError {
	return Wrap(cause, KindTemplate, "template rendering failed").WithPath(name)
}
