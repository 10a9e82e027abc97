// Package logger builds the zap logger shared by the command line tools.
package logger
