// Package grid paints the square lattice of the texture.
//
// A Table maps one uniform draw to a discrete shade through cumulative
// probability bounds. Paint tiles a canvas with squares laid out by a
// Layout, consuming exactly one draw per square.
package grid
