/* Package main implements an interactive interpreter for a small
line-numbered BASIC dialect.

A user enters numbered program lines which are stored in a resident
program buffer and later executed in order with RUN; control-flow
statements (GOTO, IF...THEN GOTO, FOR...NEXT) can redirect execution to
other numbered lines. The same prompt accepts immediate commands
(LIST, RUN, NEW, LOAD, SAVE, QUIT) and immediate execution of a subset
of statements (PRINT, LET, DIM, INPUT, FOR, NEXT).

The interesting part of this program is not the REPL or the line
editor -- both are simple buffered-line operations -- but the execution
engine: a tokenization-free recursive-descent expression evaluator, a
statement dispatcher, a 26-slot variable/array/string store, and a
FOR...NEXT control stack with forward-scan skipping semantics. These
pieces decide what a program means.

Deliberately out of scope: floating point, user-defined subroutines or
GOSUB, line labels other than integer line numbers, DATA statements,
file I/O from within a running program, expressions as GOTO targets
beyond a computed integer, multi-character identifiers, and operator
precedence beyond the four arithmetic operators plus six relational
operators.
*/
package main
