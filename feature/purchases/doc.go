// Package purchases implements the purchase import feature.
//
// A payload is an XML document:
//
//	<Purchases>
//	  <Purchase title="Dungeon Warfare 2">
//	    <Type>Digital</Type>
//	    <Key>ZTZ3-0D2S-G4TJ</Key>
//	    <Card>1833 5024 0553 6211</Card>
//	    <Date>07/12/2016 05:49</Date>
//	  </Purchase>
//	</Purchases>
//
// Purchases reference a card and a game that were committed by earlier
// imports; the current batch is never consulted.
//
// # Failure modes
//
// Unlike games and users, only field rule failures are per-record
// ("Invalid Data"). These abort the whole call and persist nothing:
//
//   - a Type outside Other, Digital, Package, Retail (matched case-sensitively)
//   - a Date not in dd/MM/yyyy HH:mm
//   - a Card number or game title with no match in the store
//
// Accepted purchases are reported as "Imported {GameName} for {Username}".
package purchases
