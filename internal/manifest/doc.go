// Package manifest loads content packages and host fixtures from HCL files.
//
// A package manifest declares containers of prefabs and the content built
// from them:
//
//	package "com.example.ruins" {
//	  name    = "Ruins"
//	  version = "1.0.0"
//
//	  container "ruins" {
//	    prefab "Ruin_Tower" {
//	      location {
//	        exterior_radius = 20
//	        interior        = "Ruin_Interior"
//	      }
//	      child "TreasureChest" {
//	        net_view = true
//	      }
//	    }
//	  }
//
//	  location "ruins" "Ruin_Tower" {
//	    biomes   = ["Meadows"]
//	    quantity = 20
//	  }
//	}
//
// A host block describes the simulated host the packages are run against.
package manifest
