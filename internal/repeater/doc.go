/*
Package repeater provides the timed repeater loop. Given a Source (the
intention, either literal text or the contents of a file) and a Schedule
(how many times to repeat it and for how long) the Loop performs a burst of
repeats immediately and then again at each hourly mark until the duration
has passed or the context is cancelled.

The loop polls the clock once per Tick and reports the time remaining
through an optional callback so that a caller can show a countdown. The
Clock is an interface so that the loop can be driven without waiting.
*/
package repeater
