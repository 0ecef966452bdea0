// Package components defines ECS components for the simulation.
package components
