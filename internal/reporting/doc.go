// Package reporting provides Reporter implementations. Query and
// argument failures never surface as return values to callers of the
// query services; they travel through a Reporter instead. The console
// reporter renders them for the terminal, the log reporter forwards
// them to the verbose log, the memory reporter records them for tests,
// and Fanout combines sinks.
package reporting
