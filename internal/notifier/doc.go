// Package notifier provides announcement channels for newly listed tours.
//
// The notifier package posts one message per added tour to the configured
// channel. Twitter and Telegram are supported, plus a dry-run notifier that
// prints the would-be messages. Credentials come from the environment, never
// from the config file.
package notifier
