package constants

const (
	// MoneyScale is the number of Money units in one currency unit.
	MoneyScale     = 10000
	MoneyPrecision = 4
)

const (
	AppName             = "txengine"
	DefaultFeedCapacity = 100
)

const (
	OutputFormatCSV   = "csv"
	OutputFormatTable = "table"

	LogFormatColorful = "colorful"
	LogFormatJSON     = "json"
)
