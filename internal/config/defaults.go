package config

const (
	defaultDataDir         = "~/.local/share/mealplan"
	defaultListDir         = "~/mealplan"
	defaultCatalogBaseURL  = "https://tasty.p.rapidapi.com"
	defaultCatalogPageSize = 200
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			ListDir: defaultListDir,
		},
		Catalog: Catalog{
			BaseURL:  defaultCatalogBaseURL,
			PageSize: defaultCatalogPageSize,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
