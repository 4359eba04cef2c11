// Package types defines the instrument contract: roles and their fixed
// performance order, the Payload variants (Func, Static), the optional
// Initializer capability, and the errors reported while tuning or playing.
package types
