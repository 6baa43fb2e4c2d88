/*
Package timespec parses the time specifications given to execat and
converts them into the number of seconds to wait.

A time specification is either an absolute time of day ("HH:MM" or
"HH:MM:SS") or, if it starts with a '+', a relative offset in the same form
("+HH:MM" or "+HH:MM:SS"). An absolute time that has already passed today
(or is exactly now) is taken to mean that time tomorrow.
*/
package timespec
