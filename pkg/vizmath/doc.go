/*
Package vizmath provides the pure, deterministic helpers behind the diagram
visuals: modular arithmetic, toy hashing, hex XOR, and elliptic curve point
math over the reals and over small prime fields.

Everything here exists for pedagogical display. The "hash" is a multiply-xor
fold with deliberate collisions, the curve math uses toy parameters, and none
of it is meant to interoperate with a real cryptographic system. The functions
are total over their documented domains and free of hidden state, so they can
be unit-tested without any rendering machinery.
*/
package vizmath
