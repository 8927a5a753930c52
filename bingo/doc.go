// Package bingo plays giant squid bingo.
//
// A Board is a grid of Fields. Drawing a number marks every field holding it;
// a board wins once any full row or column is marked. A winner's score is the
// sum of its unmarked numbers times the number that completed it.
//
// Game.Play reports the first board to win. Game.PlayToEnd keeps drawing,
// retiring each board as it wins, and reports the last one. When several
// boards win on the same draw they retire in input order.
//
// Errors:
//
//   - ErrNoWinner when the draws run out before a board wins.
//   - input.ErrParse for malformed numbers or boards; grid.ErrShape for
//     ragged board rows.
package bingo
