package loader

// NewService creates a new loader service with optional configuration
func NewService(options ...Option) *Service {
	s := &Service{
		format: FormatAuto,
		debug:  &noOpDebugger{},
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// WithFormat forces the input format instead of guessing from the extension
func WithFormat(format Format) Option {
	return func(s *Service) {
		s.format = format
	}
}

// WithDebugger sets the debugger for logging
func WithDebugger(debugger Debugger) Option {
	return func(s *Service) {
		if debugger != nil {
			s.debug = debugger
		}
	}
}
