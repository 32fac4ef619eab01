// Package constants provides shared constants for the estate-calc application.
package constants

// Loan constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// ScheduleDisplayMonths is the number of amortization rows shown by default
	ScheduleDisplayMonths = 12

	// MaxReasonableTenureMonths is the tenure beyond which configuration warns (40 years)
	MaxReasonableTenureMonths = 480

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// RelativeTolerance is the relative tolerance for floating-point equality checks
	RelativeTolerance = 1e-6
)

// Default loan form values as shown when the calculator first loads.
const (
	DefaultLoanAmount   = "500000"
	DefaultInterestRate = "7.5"
	DefaultLoanTenure   = "20"
	DefaultTenureUnit   = "years"
)

// Conversion constants
const (
	// DisplayDigits is the number of fractional digits shown for conversion results
	DisplayDigits = 6
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// CLI mode constants
const (
	ModeEMI     = "emi"
	ModeConvert = "convert"
	ModeAll     = "all"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "ESTATE"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the calculator API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRateLimitRequests is the number of requests allowed per client per window
	DefaultRateLimitRequests = 120

	// DefaultRateLimitWindow is the refill window for the rate limiter
	DefaultRateLimitWindow = "1m"

	// DefaultCacheTTL is how long computed loan plans stay cached
	DefaultCacheTTL = "10m"
)
