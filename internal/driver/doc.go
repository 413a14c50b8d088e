// Package driver loads YAML scenario files and replays them against
// list.List[int] for the lvstl command.
//
// Every scenario runs on a fresh list with the run's log15 logger attached,
// prints "<name>: <values> \t [size]: n\tTime Cost: s [s]\t<status>" and is
// checked against its optional expect sequence. A run is tagged with a uuid
// carried by every log record.
package driver
