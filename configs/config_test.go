package configs

import (
	"os"
	"testing"
)

// setupTestEnv sets up required environment variables for config unmarshaling
func setupTestEnv() {
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_ENV", "test")
	os.Setenv("APP_PORT", "5000")
	os.Setenv("TWILIO_ACCOUNT_SID", "ACtest")
	os.Setenv("TWILIO_AUTH_TOKEN", "token")
	os.Setenv("TWILIO_WHATSAPP_NUMBER", "+14155238886")
	os.Setenv("GOOGLE_EMAIL", "bot@example.com")
	os.Setenv("GOOGLE_PASSWORD", "secret")
	os.Setenv("BOT_ALLOWED_NUMBERS", "")
	os.Setenv("AUTOMATION_HEADLESS", "true")
	os.Setenv("AUTOMATION_NO_SANDBOX", "false")
	os.Setenv("AUTOMATION_STEP_TIMEOUT", "10")
	os.Setenv("POSTGRES_ENABLED", "false")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("TWILIO_ACCOUNT_SID")
	os.Unsetenv("TWILIO_AUTH_TOKEN")
	os.Unsetenv("TWILIO_WHATSAPP_NUMBER")
	os.Unsetenv("GOOGLE_EMAIL")
	os.Unsetenv("GOOGLE_PASSWORD")
	os.Unsetenv("BOT_ALLOWED_NUMBERS")
	os.Unsetenv("AUTOMATION_HEADLESS")
	os.Unsetenv("AUTOMATION_NO_SANDBOX")
	os.Unsetenv("AUTOMATION_STEP_TIMEOUT")
	os.Unsetenv("POSTGRES_ENABLED")
}

// TestConfigUnmarshalsFromEnv tests that environment variables override the
// config file values
func TestConfigUnmarshalsFromEnv(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("TWILIO_ACCOUNT_SID", "ACoverride")
	os.Setenv("AUTOMATION_STEP_TIMEOUT", "25")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Twilio.AccountSID != "ACoverride" {
		t.Errorf("expected Twilio.AccountSID ACoverride, got %q", cfg.Twilio.AccountSID)
	}
	if cfg.Automation.StepTimeout != 25 {
		t.Errorf("expected Automation.StepTimeout 25, got %d", cfg.Automation.StepTimeout)
	}
}

// TestAllowedNumberListEmpty tests that an empty allow-list means unrestricted
func TestAllowedNumberListEmpty(t *testing.T) {
	bot := Bot{AllowedNumbers: ""}
	if numbers := bot.AllowedNumberList(); len(numbers) != 0 {
		t.Errorf("expected no numbers, got %v", numbers)
	}

	bot = Bot{AllowedNumbers: "  "}
	if numbers := bot.AllowedNumberList(); len(numbers) != 0 {
		t.Errorf("expected no numbers for blank value, got %v", numbers)
	}
}

// TestAllowedNumberListSplitsAndTrims tests comma splitting with whitespace
func TestAllowedNumberListSplitsAndTrims(t *testing.T) {
	bot := Bot{AllowedNumbers: "+1234567890, +9876543210 ,,"}

	numbers := bot.AllowedNumberList()
	if len(numbers) != 2 {
		t.Fatalf("expected 2 numbers, got %v", numbers)
	}
	if numbers[0] != "+1234567890" || numbers[1] != "+9876543210" {
		t.Errorf("expected trimmed numbers, got %v", numbers)
	}
}
