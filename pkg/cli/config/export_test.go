package config

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, appToken string) *Slack {
	return &Slack{
		botToken: botToken,
		appToken: appToken,
	}
}

// NewAirtableForTest creates an Airtable config for testing purposes
func NewAirtableForTest(apiToken, baseID, tableName, textField string) *Airtable {
	return &Airtable{
		apiToken:  apiToken,
		baseID:    baseID,
		tableName: tableName,
		textField: textField,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
