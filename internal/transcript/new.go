package transcript

type implWriter struct {
	fontName string
	fontSize uint64
}

// New creates a DOCX transcript Writer.
func New() Writer {
	return &implWriter{
		fontName: fontName,
		fontSize: fontSize,
	}
}
