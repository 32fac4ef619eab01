package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/estate-calc/internal/config"
	"github.com/iwvelando/estate-calc/internal/logging"
	"github.com/iwvelando/estate-calc/pkg/constants"
	"github.com/iwvelando/estate-calc/pkg/loans"
	"github.com/iwvelando/estate-calc/pkg/output"
	"github.com/iwvelando/estate-calc/pkg/validation"
	"go.uber.org/zap"
)

// applyLoanOverrides copies the loan flags that were set on the command line
// over the configured loan.
func applyLoanOverrides(fs *flag.FlagSet, loan *config.LoanConfig, amount, rate float64, tenure int, tenureUnit string, full bool) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "amount":
			loan.Amount = amount
		case "rate":
			loan.Rate = rate
		case "tenure":
			loan.Tenure = tenure
		case "tenure-unit":
			loan.TenureUnit = tenureUnit
		case "full-schedule":
			loan.FullSchedule = full
		}
	})
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	mode := flag.String("mode", constants.ModeAll, "what to compute: emi, convert, all")
	amount := flag.Float64("amount", 0, "loan amount override")
	rate := flag.Float64("rate", 0, "annual interest rate override, in percent")
	tenure := flag.Int("tenure", 0, "loan tenure override")
	tenureUnit := flag.String("tenure-unit", "", "loan tenure unit override: months, years")
	fullSchedule := flag.Bool("full-schedule", false, "print every period instead of the first year")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(), zap.String("op", "main"))
	}
	if err := validation.ValidateMode(*mode); err != nil {
		logger.Fatal(err.Error(), zap.String("op", "main"))
	}

	applyLoanOverrides(flag.CommandLine, &conf.Loan, *amount, *rate, *tenure, *tenureUnit, *fullSchedule)

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if *mode == constants.ModeEMI || *mode == constants.ModeAll {
		in, err := conf.Loan.ToLoanInput()
		if err != nil {
			logger.Fatal("failed to read loan configuration",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}

		plan := loans.NewCalculator(logger).Plan(in, conf.Loan.FullSchedule)
		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyFormat(os.Stdout, plan)
		case constants.OutputFormatCSV:
			output.CsvFormat(os.Stdout, plan)
		}
	}

	if *mode == constants.ModeConvert || *mode == constants.ModeAll {
		if len(conf.Conversions) == 0 {
			if *mode == constants.ModeConvert {
				logger.Fatal(config.ErrNoConversions.Error(), zap.String("op", "main"))
			}
			return
		}

		conversions := make([]output.Conversion, 0, len(conf.Conversions))
		for i, conversion := range conf.Conversions {
			form := conversion.Form()
			result, err := form.Recompute()
			if err != nil {
				logger.Fatal("failed to convert",
					zap.String("op", "main"),
					zap.Int("conversion", i+1),
					zap.Error(err),
				)
			}
			conversions = append(conversions, output.Conversion{Form: form, Result: result})
		}

		if *mode == constants.ModeAll {
			fmt.Println()
		}
		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyConversions(os.Stdout, conversions)
		case constants.OutputFormatCSV:
			output.CsvConversions(os.Stdout, conversions)
		}
	}
}
