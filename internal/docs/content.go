package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with perfmon",
		Content: topicQuickstart,
	},
	{
		Name:    "inject",
		Title:   "Injecting Monitoring",
		Summary: "How methods are found, checked, and wrapped",
		Content: topicInject,
	},
	{
		Name:    "clean",
		Title:   "Removing Monitoring",
		Summary: "What clean removes and what it leaves alone",
		Content: topicClean,
	},
	{
		Name:    "safety",
		Title:   "Safety Rules",
		Summary: "Which methods are skipped and why",
		Content: topicSafety,
	},
}

const topicQuickstart = `Quick Start
===========

Run both commands from the mod's project directory (the one holding src/).

1. Strip any monitoring left from an earlier run:

    perfmon clean

   This removes every PerformanceMonitor.start/end call, the try/finally
   blocks around them, the import line, and the debug/ directory.

2. Instrument the allowlisted methods:

    perfmon inject

3. Copy PerformanceMonitor.java back into the debug/ package, then build:

    gradlew clean build

Add --dry-run to either command to see what would change without touching
any file. Add --verify to reject rewrites that would not parse as Java.
Run 'perfmon methods' to list the allowlist.
`

const topicInject = `Injecting Monitoring
====================

inject looks for the source root in this order and uses the first one that
exists:

    src/client/java/com/bapel_slimefun_mod
    src/main/java/com/bapel_slimefun_mod

If neither exists the command fails with exit code 1.

Each allowlisted file is looked up in its group directory (automation/,
client/ or client/gui/). Files not in the allowlist are never opened.

For every listed method, in order:

  1. The first declaration "<visibility> [static] <type> name(...) {" is
     located.
  2. The body is bounded by counting braces. Braces in strings, char
     literals and comments do not count.
  3. The body must pass the safety rules (see 'perfmon docs safety').
  4. A body that already calls PerformanceMonitor.start is left alone.
  5. The body is wrapped:

        PerformanceMonitor.start("<Prefix>.<method>");
        try {
            <original body>
        } finally {
            PerformanceMonitor.end("<Prefix>.<method>");
        }

If at least one method in a file was wrapped, the import is added after the
last import declaration. The file is written only if its content changed.

Running inject twice is safe: the second run skips every method.
`

const topicClean = `Removing Monitoring
===================

clean walks every .java file under src/client/java and src/main/java
(only .git, .gradle and .idea directories are passed over) and,
in files that mention PerformanceMonitor, removes:

  - the PerformanceMonitor import line
  - each start call together with the try { that follows it, and the
    finally block holding the matching end call
  - try blocks whose finally block holds nothing but an end call
  - any other PerformanceMonitor.start/end statement

Code that inject produced is restored byte for byte, CRLF files included.
Other calls on the class, such as PerformanceMonitor.render, are kept, and so
are try blocks the monitor never touched, even with an empty finally.

Afterwards the debug/ directories under both roots are deleted, whatever
they contain. clean always exits 0.
`

const topicSafety = `Safety Rules
============

A method body is reduced to its meaningful lines: blank lines, // comment
lines and lines holding only { or } are dropped.

  - exactly one meaningful line starting with "return": skipped
  - fewer than two meaningful lines: skipped
  - otherwise: wrapped

Wrapping a single early return in try/finally was judged error-prone, so
such one-liners are never touched. The rule is deliberately narrow; a sole
throw statement or several statements on one line are not detected.

Use --verbose to log the reason for every skipped method.
`
