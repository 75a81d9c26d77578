package uikit

// EnvPrefix prefixes every environment override read by LoadOptions, so the
// log_level key is overridden by UIKIT_LOG_LEVEL.
const EnvPrefix = "UIKIT"

// ConfigEnvVar names the options file when LoadOptions is given no path.
const ConfigEnvVar = "UIKIT_CONFIG"

// DebugEnvVar forces debug logging when set to any non-empty value.
const DebugEnvVar = "UIKIT_DEBUG"

// DefaultOnboardingVersion is used when Options leaves OnboardingVersion empty.
const DefaultOnboardingVersion = "1.0"
