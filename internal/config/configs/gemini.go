package configs

// Gemini configures the generative AI model that writes ad creatives.
type Gemini struct {
	APIKey      string  `env:"API_KEY"`
	Model       string  `env:"MODEL" envDefault:"gemini-2.5-flash"`
	// Temperature nil keeps the model default. Zero is a valid temperature.
	Temperature *float32 `env:"TEMPERATURE" envDefault:"0.9"`
}
