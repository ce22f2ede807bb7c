package driver

// Schema:
//
//	(:Region {name, map})
//	(:Region)-[:COEXTENSIVE {rc}]->(:Region)
//	(:Region)-[:CONNECTS {dataset_id, ec_source, ec_target, degree}]->(:Region)
//	(:Region)-[:TRANSLATED {campaign_id, target_map, discipline, score, evidence}]->(:Region)
var IndexQueries = []string{
	"CREATE INDEX ON :Region(name);",
	"CREATE INDEX ON :Region(map);",
}

const (
	SaveRegionsQuery = `
		UNWIND $regions AS region
		MERGE (r:Region {name: region.name})
		SET r.map = region.map
	`

	SaveRelationsQuery = `
		UNWIND $relations AS rel
		MERGE (s:Region {name: rel.source})
		MERGE (t:Region {name: rel.target})
		MERGE (s)-[r:COEXTENSIVE]->(t)
		SET r.rc = rel.rc
	`

	SaveConnEdgesQuery = `
		UNWIND $edges AS edge
		MERGE (s:Region {name: edge.source})
		MERGE (t:Region {name: edge.target})
		MERGE (s)-[c:CONNECTS {dataset_id: $dataset_id}]->(t)
		SET c.ec_source = edge.ec_source,
			c.ec_target = edge.ec_target,
			c.degree = edge.degree
	`

	SaveEndEdgesQuery = `
		UNWIND $edges AS edge
		MATCH (s:Region {name: edge.source})
		MATCH (t:Region {name: edge.target})
		MERGE (s)-[e:TRANSLATED {campaign_id: $campaign_id}]->(t)
		SET e.target_map = $target_map,
			e.discipline = edge.discipline,
			e.score = edge.score,
			e.evidence = edge.evidence
		RETURN count(e) AS saved
	`

	GetRelationsQuery = `
		MATCH (s:Region)-[r:COEXTENSIVE]->(t:Region)
		RETURN s.name AS source, t.name AS target, r.rc AS rc
		ORDER BY source, target
	`

	GetDatasetEdgesQuery = `
		MATCH (s:Region)-[c:CONNECTS {dataset_id: $dataset_id}]->(t:Region)
		RETURN s.name AS source, t.name AS target,
			c.ec_source AS ec_source, c.ec_target AS ec_target, c.degree AS degree
		ORDER BY source, target
	`

	GetDatasetIDsQuery = `
		MATCH ()-[c:CONNECTS]->()
		RETURN DISTINCT c.dataset_id AS dataset_id
		ORDER BY dataset_id
	`

	GetEndEdgesQuery = `
		MATCH (s:Region)-[e:TRANSLATED {campaign_id: $campaign_id}]->(t:Region)
		RETURN s.name AS source, t.name AS target,
			e.discipline AS discipline, e.score AS score, e.evidence AS evidence
		ORDER BY source, target
	`

	DeleteCampaignQuery = `
		MATCH ()-[e:TRANSLATED {campaign_id: $campaign_id}]->()
		DELETE e
	`
)
