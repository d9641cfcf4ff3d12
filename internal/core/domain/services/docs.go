// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shipping system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ParticipantAssembler: A domain service for building shipper and recipient
//     participant records from delivery-note-linked relational rows
//
// Domain services coordinate between aggregates and external collaborators,
// implementing business logic that spans multiple bounded contexts following
// Domain-Driven Design principles.
package services
