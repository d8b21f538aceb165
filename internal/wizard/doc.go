// Package wizard implements the interactive project setup flow used by
// the init command. It walks the user through name, stack and tier
// choices with terminal forms, shows a summary, and returns a validated
// project spec. Cancelling at any point aborts without touching disk.
package wizard
