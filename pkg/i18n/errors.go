package i18n

import "errors"

var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// File system operations
	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrFailedToReadDir    = errors.New("failed to read translations directory")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToParseFile  = errors.New("failed to parse translation file")
	ErrInvalidTranslation = errors.New("invalid translations structure")
)
