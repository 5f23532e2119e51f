// Package effect defines the contract every animated effect implements and
// the shared bookkeeping they embed.
//
// An effect is constructed by a [Factory] from an [Env], started with
// [Effect.Start], then driven once per frame by [Effect.Update] and
// [Effect.Draw] until [Effect.Finished] reports that its duration has
// elapsed. Effects keep their own small state and have no teardown.
//
// Optional behaviour is expressed as separate interfaces checked by type
// assertion:
//
//   - [Interactive]: receives pointer motion and clicks while playing
//   - [Equation]: reports a formula shown on gallery tiles
package effect
