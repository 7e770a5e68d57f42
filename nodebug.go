//go:build !scalar25519debug

package scalar25519

const debugAssertions = false
