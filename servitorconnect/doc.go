/*
The servitorconnect program repeats an intention once an hour for a given
number of seconds. The intention can be given directly or read from a file.
At the start and then at each hourly mark the intention is read the chosen
number of times. While it runs a countdown shows how long is left.

Any of the intention, the number of repeats or the duration that are not
given as parameters will be prompted for.

The program stops when the duration has passed or when it is interrupted.
*/
package main
