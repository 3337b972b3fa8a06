// Package domain models the environmental indicators bundled with the
// dashboard and the what-if scenario model built on top of them.
//
// # Indicators
//
// Each zone of the city carries three yearly series:
//
//	temperature  land surface temperature in °C (MODIS/Landsat)
//	ndvi         Normalized Difference Vegetation Index, nominally 0–1 (Landsat)
//	pm25         fine particulate matter in µg/m³ (Sentinel-5P/CAMS)
//
// Series are sparse: any zone may lack a reading for any year. Readings are
// never coerced; a missing year is simply absent from the map.
//
// # Baseline
//
// The baseline is the mean of each indicator across all zones for a single
// reference year. Zones without a reading for that year are left out of the
// mean. When no zone reports an indicator the baseline uses a fixed default
// (30 °C, 0.3 NDVI, 60 µg/m³) so the scenario model always has a finite input.
//
// # Scenario model
//
// Four policy levers are turned into a single vegetation gain measured in
// absolute NDVI points:
//
//	green roofs          100 roofs   → +0.01
//	green corridors      1 km        → +0.005
//	vegetation program   100 %       → +0.2
//
// The contributions are additive with no interaction terms. The gain then
// drives the other indicators through linear relationships observed in the
// literature:
//
//	ΔNDVI 0.1            → ≈ -1.2 °C surface temperature
//	1 % traffic emission cut → ≈ 0.8 % PM2.5 reduction
//	ΔNDVI 0.1            → ≈ 5 % PM2.5 reduction (particle deposition)
//
// All projections and improvement percentages are clamped:
//
//	NDVI           [0, 1]
//	temperature    [-50, 80] °C (sentinel bounds, not physical limits)
//	PM2.5          [0, 1000] µg/m³
//	temp/PM2.5 %   [0, 100]
//	NDVI %         [0, 300]
//	well-being     [0, 100], weighted 40 % temperature, 30 % NDVI, 30 % PM2.5
//
// Lever domains (roofs 0–500, corridors 0–30 km, emissions 0–50 %, program
// 0–50 %) are not enforced by [ComputeScenario]; callers that want rejection
// use [Levers.Validate].
package domain
