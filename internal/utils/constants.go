package utils

// LoggerInitializationFailedMessageFormat reports a failure to construct the application logger.
const LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"

// ApplicationExecutionFailedMessage prefixes fatal application errors.
const ApplicationExecutionFailedMessage = "application execution failed"

// ConfigFileName is the name of the twig configuration file.
const ConfigFileName = ".twig.yaml"

// GlobalConfigDirectoryName is the directory under the user home holding the global configuration.
const GlobalConfigDirectoryName = ".config/twig"
