// Package conductor runs a registry of named, role-tagged instruments in a
// fixed harmonic order and blends their results into a single Aggregate.
//
// Instruments are registered with a role (melody, harmony, rhythm, bass),
// tuned, and then conducted. Conducting plays every melody instrument first,
// then harmony, rhythm and finally bass, each group in registration order,
// while appending a line per step to a cumulative score:
//
//	c := conductor.New()
//	c.Register("violin", types.Value("Beautiful melody flows..."))
//	c.Register("drums", drums, types.RoleRhythm)
//	_, _ = c.Tune(ctx)
//	aggregate, err := c.Conduct(ctx)
//
// Orchestrate is a shortcut that builds, tunes and conducts in one call.
package conductor
